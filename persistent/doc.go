/*
Persistent data structures can be copied and modified efficiently, leaving the
original unchanged. Deriving a new incarnation shares all untouched parts of
the structure with the old one, so copies are cheap in space and time, and
every incarnation ever produced stays valid.

The sub-packages of this package hold containers with these properties. They
require no locking for concurrent readers: there simply is no primitive that
mutates an existing incarnation in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
